package cap

const sampleAlert = `<?xml version="1.0" encoding="UTF-8"?>
<alert xmlns="urn:oasis:names:tc:emergency:cap:1.2">
  <identifier>urn:oid:2.49.0.1.840.0.abc</identifier>
  <sender>w-nws.webmaster@noaa.gov</sender>
  <sent>2024-05-21T17:54:00-05:00</sent>
  <status>Actual</status>
  <msgType>Alert</msgType>
  <scope>Public</scope>
  <info>
    <category>Met</category>
    <event>Severe Thunderstorm Warning</event>
    <urgency>Immediate</urgency>
    <severity>Severe</severity>
    <certainty>Observed</certainty>
    <effective>2024-05-21T17:54:00-05:00</effective>
    <onset>2024-05-21T17:54:00-05:00</onset>
    <expires>2024-05-21T18:30:00-05:00</expires>
    <headline>Severe Thunderstorm Warning issued May 21 at 5:54PM CDT</headline>
    <description>HAZARD...60 mph wind gusts and quarter size hail.</description>
    <parameter>
      <valueName>VTEC</valueName>
      <value>/O.NEW.KDMX.SV.W.0030.240521T2254Z-240521T2330Z/</value>
    </parameter>
    <parameter>
      <valueName>UGC</valueName>
      <value>IAC169 IAC079</value>
    </parameter>
    <area>
      <areaDesc>Polk, IA; Story, IA</areaDesc>
      <polygon>41.60,-93.80 41.70,-93.60 41.50,-93.50 41.60,-93.80</polygon>
      <geocode>
        <valueName>FIPS6</valueName>
        <value>019153</value>
      </geocode>
      <geocode>
        <valueName>UGC</valueName>
        <value>IAC153 IAC169</value>
      </geocode>
    </area>
  </info>
  <info>
    <event>Ignored Second Event</event>
    <instruction>For your protection move to an interior room.</instruction>
    <area>
      <areaDesc>Second Area</areaDesc>
      <polygon> 41.00,-93.00 41.10,-93.10 41.20,-93.00 41.00,-93.00 </polygon>
      <geocode>
        <valueName>ugc</valueName>
        <value>IAC153</value>
      </geocode>
    </area>
  </info>
</alert>
`

const sampleEnvelope = `<message xmlns="jabber:client" from="nwws@conference.nwws-oi.weather.gov/nwws-oi" to="user@nwws-oi.weather.gov" type="groupchat">
  <body>KDMX issues SVR valid 2024-05-21T22:54:00Z</body>
  <x xmlns="nwws-oi" cccc="KDMX" ttaaii="WUUS53" issue="2024-05-21T22:54:00Z" awipsid="SVRDMX" id="1234.5678">
    <alert xmlns="urn:oasis:names:tc:emergency:cap:1.1">
      <sender>w-nws.webmaster@noaa.gov</sender>
      <msgType>Alert</msgType>
    </alert>
  </x>
</message>`
